package huffman

// FrequencyTable holds the number of occurrences of each Symbol, indexed by
// Symbol value.  Symbols with a frequency of 0 are absent from the input.
type FrequencyTable [AlphabetSize]uint64

// CountFrequencies tabulates the occurrences of each Symbol in data.  Empty
// data yields an all-zero table.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// Total returns the sum of all frequencies, i.e. the length of the input that
// produced this table.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Distinct returns the number of Symbols with a nonzero frequency.
func (freq *FrequencyTable) Distinct() int {
	var count int
	for _, n := range freq {
		if n != 0 {
			count++
		}
	}
	return count
}
