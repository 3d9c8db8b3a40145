/*
Package config manages run configuration parsing and validation.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |   HCL   |  |  JSON   |
	|  Parser  |  |  Parser |  |  Parser |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Loads run settings from .clippatch config files
- Normalizes and validates pattern lists, mode and output choices
- Provides the defaults used when no config file is present

🔄 Flow:
1. The CLI probes for a default config file or takes --config
2. The matching format parser decodes the bytes, rejecting unknown keys
3. Command-line flags are merged over the decoded values
4. Validate fills defaults and rejects contradictions before any file is
   touched

📝 Design Philosophy:
A config file does not have to be complete on its own: patterns may arrive
from flags or a patterns file. Validation therefore runs after the merge,
not inside the parsers, and every configuration mistake surfaces before
the first clip is read.
*/
package config
