package engine

// Input is a snapshot of held controls, valid for exactly one tick. The engine
// never reads raw device events; the shell builds one of these per tick from
// whatever input layer it runs on.
type Input struct {
	Left  bool
	Right bool
	Run   bool
	Jump  bool
}
