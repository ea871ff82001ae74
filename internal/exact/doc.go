// Package exact provides exact closest-pair algorithms used as references
// for the window scan: an O(n²) all-pairs search and the classic
// O(n log n) divide-and-conquer search.
package exact
