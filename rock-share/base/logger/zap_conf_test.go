package logger

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap/zapcore"
)

func TestInitZap(t *testing.T) {
	Convey("TestInitZap", t, func() {
		dir := t.TempDir()
		l, err := initZap("debug", "pfd-test", dir, 1, 1, 1, "")
		So(err, ShouldBeNil)
		l.Error("g1 calculation failed")
		_ = l.Sync()

		files, err := filepath.Glob(filepath.Join(dir, "pfd-test_err_*.log"))
		So(err, ShouldBeNil)
		So(len(files), ShouldBeGreaterThanOrEqualTo, 1)
	})

	Convey("TestInitZapBadLevel", t, func() {
		_, err := initZap("loud", "pfd-test", t.TempDir(), 1, 1, 1, "")
		So(err, ShouldNotBeNil)
	})
}

func TestSentryLevel(t *testing.T) {
	Convey("TestSentryLevel", t, func() {
		So(string(sentryLevel(zapcore.WarnLevel)), ShouldEqual, "warning")
		So(string(sentryLevel(zapcore.ErrorLevel)), ShouldEqual, "error")
		So(string(sentryLevel(zapcore.PanicLevel)), ShouldEqual, "fatal")
	})
}
