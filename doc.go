// Package sigscan compiles IDA-style byte signatures ("48 8B ?? ?? 5C 24")
// into a Signature and scans byte slices for the lowest matching address.
//
// A Signature picks one of five strategies at Compile time based on where
// the pattern's wildcards fall — wildcard-free patterns run
// Boyer-Moore-Horspool, patterns anchored on one or both ends seek that
// anchor and verify, and patterns wildcarded on both ends fall back to a
// rarity-scored interior anchor. Scan and ScanMany parallelize large
// regions across a shared work-stealing pool when built without the nomt
// tag.
//
//	sig, err := sigscan.Compile("48 8B ?? ?? 5C 24")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if addr, ok := sig.Scan(image); ok {
//		fmt.Printf("match at %#x\n", addr)
//	}
package sigscan
