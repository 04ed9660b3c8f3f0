// Package main provides the entry point for cribcrack.
//
// cribcrack recovers the key of a shift or repeating-key (Vigenere)
// cipher from a ciphertext and a fragment of its plaintext:
//
//   - shift: try all 26 shifts, smallest matching shift wins
//   - vigenere: derive candidate keys from every crib window
//   - encode: produce ciphertext to practise on
//
// Usage:
//
//	cribcrack shift --crib pumpkin --file cookies.txt
//	cribcrack -o json vigenere --crib gingerbread --key-length 4 < recipe.txt
//	cribcrack encode vigenere --key cork attackatdawn
//
// Exit status is 0 when a key was found, 2 when the search finished
// without a match and 1 on any other error.
package main
