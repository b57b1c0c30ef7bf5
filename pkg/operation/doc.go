/*
Package operation implements the rename pass.

	+-------------+
	|    Scan     |
	| (classify)  |
	+------+------+
	       |
	+------+------+
	|   Assign    |
	| (numbering) |
	+------+------+
	       |
	+------+------+
	|   Rename    |
	|  (confirm)  |
	+-------------+

🎯 Purpose:
- Gives every non-conforming file the lowest free sequence number
- Keeps the original extension
- Asks before each rename unless told not to

🔄 Flow:
1. Scans the target directory (see package scan)
2. Reports files that already conform
3. Walks pending files in sorted order
4. Offers each the next free number and prints old -> new
5. Renames on acceptance; only a completed rename (or a dry run) uses up the number

⚡ Key Responsibilities:
- Scanning errors abort the run before anything is renamed
- Per-file failures are reported and never abort the run
- Dry runs print exactly what a real run would do

🤝 Interfaces:
- afero.Fs: where files live
- prompt.Confirmer: the yes/no answer per file
- log.Logger: the report, taken from the context

🔍 Example:

	r, err := operation.New(operation.Options{
		Fs:        afero.NewOsFs(),
		Pattern:   pattern.MustCompile("file-{}"),
		AcceptAll: true,
	})
	if err != nil {
		return err
	}
	ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr, zerolog.WarnLevel))
	summary, err := r.Run(ctx, "./photos")
*/
package operation
