package deck

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// and card operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugOut is where debug diagnostics are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugf prints a [deck]-prefixed line to debugOut when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[deck] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("deck debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugDeckState logs a one-line summary of the deck bookkeeping.
func debugDeckState(d *Deck, op string) {
	if !globalDebug {
		return
	}
	debugf("%s: resident=%d/%d loaded=%d/%d current=%d",
		op, len(d.queue), d.poolBound(), d.loaded, d.total, d.current)
}
