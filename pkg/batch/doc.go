/*
Package batch implements the core business logic for patching clip files.

	+-------------+
	|    Batch    |
	| (Orchestr.) |
	+------+------+
	       |
	+------+------+------+
	|      |      |      |
	scan  patch  source  Reporter

🎯 Purpose:
- Runs the full pipeline per file: read, extract, match, plan, apply
- Collects patched content, per-file reports and run totals
- Feeds a Reporter as the run advances

🔄 Flow:
1. Compile the pattern list once under the run's case policy
2. Process every file strictly in order, one at a time
3. Failures in one file are reported and the batch moves on
4. Totals are handed to the Reporter when the run finishes

⚡ Key Behaviors:
- Processing is strictly sequential, so log output and overlap resolution
  are deterministic from the input order
- Per-file failures never abort the batch; empty pattern lists or empty
  file sets reject the run before any file is touched
- Dry runs report matches without producing patched content
*/
package batch
