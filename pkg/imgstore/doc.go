// Package imgstore implements a single-file, content-addressed JPEG store.
//
// A store file holds a fixed header, a preallocated array of metadata
// slots, and a heap of raw JPEG bytes appended in write order. The store
// supports insert, read (with lazy on-demand resizing to thumbnail/small
// derivatives), delete (logical), list, and offline compaction.
// Content-identical images share storage via SHA-256 deduplication;
// variant resolutions are computed on first read and cached in place.
//
// # Basic usage
//
//	store, err := imgstore.Create("gallery.imgst", imgstore.Options{
//	    MaxFiles:   1000,
//	    ThumbWidth: 64, ThumbHeight: 64,
//	    SmallWidth: 256, SmallHeight: 256,
//	}, codec, hasher)
//	if err != nil {
//	    // handle error
//	}
//	defer store.Close()
//
//	err = store.Insert(jpegBytes, "cat.jpg")
//	thumb, err := store.Read("cat.jpg", imgstore.Thumb)
//
// # Concurrency
//
// A store is single-threaded and blocking: at most one open session per
// file is supported, and the engine does not serialize calls internally.
// A caller embedding the engine in a concurrent server must serialize
// calls itself.
//
// # Error handling
//
// Errors are classified with sentinel values in errors.go. Callers should
// use [errors.Is] to branch on error kind rather than inspecting messages.
package imgstore
