/*
Package scan locates user patterns inside binary clip metadata.

	+-------------+
	|    Scan     |
	|  (Matcher)  |
	+------+------+
	       |
	  +----+-----------------+
	  |                      |
	+-----------+      +-----------+
	| Extractor |      | Patterns  |
	| (strings) |      | (compiled)|
	+-----------+      +-----------+

🎯 Purpose:
- Extracts printable ASCII runs from raw clip bytes
- Compiles user pattern lines into matchers
- Locates every occurrence of every pattern with byte offsets

🔄 Flow:
1. Raw bytes come in from a clip file
2. Wildcard patterns ('*' or '?') are matched against whole extracted strings
3. Exact patterns are searched as byte sequences anywhere in the buffer
4. Matches carry offset, length, matched text and the source pattern

⚡ Key Behaviors:
- Extraction keeps maximal runs only; offsets address the original buffer
- Wildcard matching is anchored: the extracted string must match end to end
- Exact search keeps overlapping occurrences (scan resumes one byte later)
- Case-insensitive exact search compares the lower/upper variants of the
  pattern, not of the data, so mixed-case occurrences in the clip are missed

📝 Design Philosophy:
Matching is pure and total. Compilation never returns an error: a wildcard
pattern that cannot compile contributes zero matches, because a bad pattern
line should never abort a batch over other, valid lines.
*/
package scan
