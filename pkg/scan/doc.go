/*
Package scan classifies the files of a target directory.

	+-------------+       +-------------+
	|  directory  | ----> |   Scanner   |
	|  (one level)|       |  (pattern)  |
	+-------------+       +------+------+
	                             |
	        +--------------------+--------------------+
	        |                    |                    |
	+-------+-------+    +-------+-------+    +-------+-------+
	|    Skipped    |    |    Pending    |    |    Ignored    |
	| (conforming)  |    |  (to rename)  |    |   (globs)     |
	+---------------+    +---------------+    +---------------+

🎯 Purpose:
- Find files that already follow the pattern and record their numbers
- Collect every other regular file as a rename candidate
- Leave directories, symlinks and special files alone

🔄 Flow:
1. Lists the directory through an afero.Fs
2. Drops non-regular entries
3. Drops names matching an ignore glob
4. Matches the rest against the compiled pattern
5. Sorts the pending paths so runs are reproducible

⚡ Key Responsibilities:
- The used set is complete before any number is handed out
- A read failure aborts the whole scan; nothing partial is returned

🔍 Example:

	s, err := scan.New(afero.NewOsFs(), pattern.MustCompile("file-{}"))
	if err != nil {
		return err
	}
	res, err := s.Scan(ctx, "./photos")
	if err != nil {
		return err
	}
	for _, path := range res.Pending {
		fmt.Println(path, res.Used.Next())
		res.Used.Commit()
	}
*/
package scan
