// Package bfformatter reformats whitespace-insensitive source code,
// brainfuck being the motivating case, into ASCII art shaped by an image.
//
// The token stream is laid over a luminosity-thresholded, resized copy of
// the image: dark cells (light cells when inverted) receive the next
// source character, every other cell receives a space. Tokens that do not
// fit are appended verbatim after the raster, so the output stays
// equivalent to the input under any whitespace-insensitive reader.
//
// Start with New, then call Format to render against an image file, or
// Render to work with an already decoded image.Image. The token stream is
// treated as a byte sequence; sources are expected to be ASCII.
package bfformatter
