package system

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"

	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/entity"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/logging"
)

// Clipboard receives exported level text.
type Clipboard interface {
	WriteText(data []byte) error
}

// SystemClipboard writes to the OS clipboard. The first failed
// initialisation disables it for the rest of the process.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

func (c *SystemClipboard) WriteText(data []byte) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// EditorIOSystem saves the Editor layout on Ctrl+S and copies it to the
// clipboard on Ctrl+C.
type EditorIOSystem struct {
	res       *Resources
	clipboard Clipboard
	log       *logrus.Entry
}

func NewEditorIOSystem(res *Resources, cb Clipboard) *EditorIOSystem {
	return &EditorIOSystem{res: res, clipboard: cb, log: logging.System("editor_io")}
}

func (s *EditorIOSystem) Update(w *ecs.World) {
	if w == nil || s.res == nil {
		return
	}
	ms, ok := modeState(w)
	if !ok || !ms.EditorActive {
		return
	}
	in, ok := inputState(w)
	if !ok {
		return
	}

	if in.SavePressed {
		if err := saveEditorLayout(w, s.res.Store); err != nil {
			s.log.WithError(err).WithField("level", s.res.Store.Name()).Error("save level")
		} else {
			if sel, ok := editorSelection(w); ok {
				sel.Dirty = false
			}
			s.log.WithField("level", s.res.Store.Name()).Info("level saved")
		}
	}

	if in.CopyPressed && s.clipboard != nil {
		data, err := levels.Marshal(EditorLayout(w))
		if err == nil {
			err = s.clipboard.WriteText(data)
		}
		if err != nil {
			s.log.WithError(err).Warn("copy level")
			return
		}
		s.log.WithField("bytes", len(data)).Info("level copied to clipboard")
	}
}

// EditorLayout describes the Editor's blocks in placement order.
func EditorLayout(w *ecs.World) levels.Descriptor {
	return entity.DescribeBlocks(w, editorBlocks(w))
}

func saveEditorLayout(w *ecs.World, store levels.Store) error {
	return store.Save(EditorLayout(w))
}
