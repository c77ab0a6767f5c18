package generator

import "time"

// revealMsg fires once the reveal delay has elapsed and the batch can be drawn.
type revealMsg time.Time
