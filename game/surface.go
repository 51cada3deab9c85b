package game

// Surface is the drawing capability a Game renders onto. The game only ever
// writes to it.
type Surface interface {
	DrawSprite(name string, pos int)
	DrawMessage(msg string)
}

// Flusher is implemented by surfaces that buffer a frame and need to present
// it once a render pass is complete.
type Flusher interface {
	Flush()
}
