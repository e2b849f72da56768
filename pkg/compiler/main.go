// Package compiler translates a restricted Python subset into the tokenized
// Basic dialect understood by Casio fx-9860 calculators.
//
// Pipeline: Python source → pyast.Lex → pyast.Parse → translate → G1M bytes
package compiler
