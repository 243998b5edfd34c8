package system

// EnterGraphicsConsole hides the text console behind the framebuffer and
// returns a func that restores it. Failures are logged and otherwise ignored.
func EnterGraphicsConsole(l logger) (restore func()) {
	logResult(l, "KD_GRAPHICS set", SetGraphicsMode())
	logResult(l, "cursor hidden", HideCursor())
	return func() {
		logResult(l, "cursor shown", ShowCursor())
		logResult(l, "KD_TEXT set", RestoreTextMode())
	}
}

func logResult(l logger, ok string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%v", err)
		return
	}
	l.Infof("tty", "%s", ok)
}
