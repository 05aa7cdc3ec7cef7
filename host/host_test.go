package host

import "testing"

type testNode struct{ parent Node }

func (n *testNode) Parent() Node { return n.parent }

type testWindow struct {
	testNode
	alive bool
}

func (w *testWindow) Alive() bool     { return w.alive }
func (w *testWindow) Iconic() bool    { return false }
func (w *testWindow) Handle() uintptr { return 0 }

func TestTopLevel(t *testing.T) {
	root := &testWindow{alive: true}
	top := &testWindow{testNode: testNode{parent: root}, alive: true}
	frame := &testNode{parent: top}
	button := &testNode{parent: frame}
	orphan := &testNode{}

	tests := []struct {
		name string
		node Node
		want Window
	}{
		{"widget in secondary window", button, top},
		{"frame", frame, top},
		{"secondary window is its own top level", top, top},
		{"root window", root, root},
		{"orphan", orphan, nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopLevel(tt.node); got != tt.want {
				t.Errorf("TopLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
