package huffman

// Symbol represents one unit of the input alphabet, i.e. one byte.
type Symbol byte

// AlphabetSize is the number of distinct Symbols.
const AlphabetSize = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(AlphabetSize - 1)
