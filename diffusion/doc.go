// Package diffusion builds the Grover inversion-about-the-mean operator over
// a single register.
//
// The circuit is H⊗ⁿ · X⊗ⁿ · MCZ · X⊗ⁿ · H⊗ⁿ, which equals I − 2|s⟩⟨s| for the
// uniform state |s⟩. That is the textbook 2|s⟩⟨s| − I up to a global phase
// of −1, invisible to measurement. Only the given register is referenced,
// so any other register (syndrome ancillas) is left untouched.
//
// Complexity: 4n+1 gates.
package diffusion
