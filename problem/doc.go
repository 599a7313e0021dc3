// Package problem reads and writes GF(2) linear systems.
//
// File schema (any format):
//
//	name   = "chain3"              # optional
//	matrix = [[1, 1, 0], [0, 1, 1]] # rows = equations, columns = variables
//	target = [0, 0]
//
// Row and column order is preserved exactly in both directions. Formats are
// picked by extension: .toml (naoina/toml), .yaml/.yml (yaml.v3) and .json.
// Unknown keys are rejected in every format.
//
// Parse handles the compact command-line form: rows of 0/1 characters
// separated by commas or semicolons ("110,011") and a target bitstring ("00").
package problem
