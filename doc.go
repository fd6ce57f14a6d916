// Package nested parses locations that reference an entry inside an outer
// archive file.
//
// A nested location has the form:
//
//	<path>/!<entry>
//
// for example:
//
//	/home/example/my.jar/!BOOT-INF/lib/my-nested.jar
//	/home/example/my.jar/!BOOT-INF/classes/
//
// The path refers to an archive on the file system and the entry names
// either an uncompressed entry holding the nested archive or a directory
// entry. The entry should not start with '/'. The separator is matched at its
// last occurrence, so "a/!b/!c" has path "a/!b" and entry "c". An empty path,
// as in "/!lib/a.jar", is allowed and leaves the path absent.
//
// Locations are usually carried in "nested:" URLs:
//
//	loc, err := nested.FromURL(u)
//	if err != nil {
//	    return err
//	}
//	if !loc.HasPath() {
//	    return errors.New("location has no archive path")
//	}
//	zr, err := zip.OpenReader(loc.Path())
//	if err != nil {
//	    return err
//	}
//	defer zr.Close()
//	entry, err := zr.Open(loc.EntryName())
//	if err != nil {
//	    return err
//	}
//	defer entry.Close()
//
// # Caching
//
// Parsed locations are memoized by their exact raw text for the lifetime of
// the process, so parsing the same location again is a single map lookup.
// Concurrent parses of the same text compute the location once. Use
// [NewParser] for an isolated cache, or [ClearCache] to reset the shared one.
//
// This package performs no I/O: it neither checks that the path exists nor
// opens the archive.
package nested
