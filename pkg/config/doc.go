/*
Package config loads optional run defaults from a file.

	            +-------------+
	            |   Config    |
	            | (defaults)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Lets a directory keep its own pattern and ignore list
- Rejects unknown keys so typos surface early

🔄 Flow:
1. Picks a parser by file extension
2. Reads the file through an afero.Fs
3. Decodes it
4. Validates the pattern and the ignore globs

🔍 Example (YAML):

	pattern: "scan-{}"
	yes: false
	dry_run: true
	ignore:
	  - "*.tmp"
	  - ".renumber.*"

🔍 Example (HCL):

	pattern = "scan-{}"
	ignore  = ["*.tmp"]
*/
package config
