package imgstore

import "os"

// osExclCreateFlags opens a brand-new store file for create: fail if it
// already exists (spec.md §4.3's create must not silently overwrite).
const osExclCreateFlags = os.O_RDWR | os.O_CREATE | os.O_EXCL

// osReadWriteFlags opens an existing store file for read and write.
const osReadWriteFlags = os.O_RDWR

// osReadOnlyFlags opens an existing store file for reading only.
const osReadOnlyFlags = os.O_RDONLY
