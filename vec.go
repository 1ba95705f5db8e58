package ringbuf

import "fmt"

// ErrVectorIO reports that vectored ring I/O is not available on this
// platform. FillFrom and DrainTo need readv(2)/writev(2).
var ErrVectorIO = fmt.Errorf("vectored i/o not supported on this platform")
