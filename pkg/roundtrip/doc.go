// Package roundtrip loads, writes and re-reads a record file.
//
// A round trip has three stages:
//
//  1. load-or-default: parse the file if it exists, otherwise fall back to
//     the default record stamped with the current time
//  2. serialize: write the record back to the file in block style,
//     replacing its content
//  3. reload: parse the file again to confirm it still holds the same record
//
// No stage is fatal. File-access and malformed-content failures are reported
// through a [Reporter] and the run moves on to the next stage, so a round
// trip always completes and returns a [Result].
//
// # Usage
//
//	res, err := roundtrip.Execute(ctx, afero.NewOsFs(), roundtrip.Options{
//	    Path: "example.yaml",
//	}, roundtrip.NewTextReporter(os.Stdout), logger)
//	if err != nil {
//	    return err // invalid options only
//	}
//	fmt.Println(res.Consistent)
//
// # Stale files
//
// When the file exists and parses, its record replaces the freshly generated
// default, including the default's timestamp. The default is still kept in
// [Result.Default], the replacement is logged at debug level, and
// [Options.Fresh] skips loading altogether.
package roundtrip
