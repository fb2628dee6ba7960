package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/db"
)

func TestLoadHistory(t *testing.T) {
	ctx := context.Background()
	snaps := day.NewSnapshots(db.NewMemory())
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	snaps.Save(ctx, today.AddDate(0, 0, -2), day.Snapshot{
		Goals: []day.Goal{{ID: "g1", Text: "Ship"}},
	})

	msg := LoadHistory(snaps, today, 7)()
	loaded, ok := msg.(HistoryLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want HistoryLoadedMsg", msg)
	}
	if len(loaded.Days) != 1 || loaded.Days[0].Date.Day() != 13 {
		t.Fatalf("days = %+v", loaded.Days)
	}
	if !loaded.For.Equal(today) {
		t.Errorf("For = %v, want %v", loaded.For, today)
	}
}

func TestCopyToClipboard(t *testing.T) {
	var got string
	msg := CopyToClipboard(func(s string) error { got = s; return nil }, "summary text", "summary")()

	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("msg = %T, want StatusMsgCmd", msg)
	}
	if got != "summary text" {
		t.Errorf("clipboard = %q", got)
	}
	if !strings.Contains(status.Msg, "summary") {
		t.Errorf("status = %q", status.Msg)
	}
}

func TestCopyToClipboard_Error(t *testing.T) {
	errNoDisplay := errors.New("no display")
	msg := CopyToClipboard(func(string) error { return errNoDisplay }, "x", "summary")()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, errNoDisplay) {
		t.Errorf("err = %v, want wrapped errNoDisplay", errMsg.Err)
	}

	if _, ok := CopyToClipboard(nil, "x", "summary")().(ErrMsg); !ok {
		t.Error("nil writer should report an error")
	}
}

func TestStatus(t *testing.T) {
	if msg := Status("hello")(); msg != (StatusMsgCmd{Msg: "hello"}) {
		t.Errorf("Status() = %+v", msg)
	}
}

func TestTick(t *testing.T) {
	if Tick(time.Millisecond) == nil {
		t.Fatal("Tick returned nil")
	}
}
