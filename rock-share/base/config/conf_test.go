package config

import (
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	Convey("TestLoadConfig", t, func() {
		Convey("values from file and defaults", func() {
			dir := t.TempDir()
			content := `
server_config:
  http_port: "8080"
logger_config:
  level: "debug"
  max_age: 3
pfd_config:
  max_error: 0.05
  sample_size: -1
  null_equals_null: false
`
			So(os.WriteFile(path.Join(dir, "config.yml"), []byte(content), 0644), ShouldBeNil)
			So(LoadConfig(dir), ShouldBeNil)
			So(All.Server.HttpPort, ShouldEqual, "8080")
			So(All.Server.ResultDir, ShouldEqual, "result")
			So(All.Logger.Level, ShouldEqual, "debug")
			So(int64(All.Logger.MaxAge), ShouldEqual, 3)
			So(All.Pfd.MaxError, ShouldEqual, 0.05)
			So(All.Pfd.SampleSize, ShouldEqual, -1)
			So(All.Pfd.EstimateConfidence, ShouldEqual, 0.9)
			So(All.Pfd.MaxArity, ShouldEqual, 4)
			So(*All.Pfd.NullEqualsNull, ShouldBeFalse)
		})

		Convey("missing file", func() {
			So(LoadConfig(t.TempDir()), ShouldNotBeNil)
		})

		Convey("shipped config", func() {
			So(LoadConfig("../../../config"), ShouldBeNil)
			So(All.Server.HttpPort, ShouldEqual, "19124")
			So(*All.Pfd.NullEqualsNull, ShouldBeTrue)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("TestDefault", t, func() {
		all := Default()
		So(all.Server.HttpPort, ShouldEqual, "19124")
		So(all.Logger.Path, ShouldEqual, "./logs")
		So(all.Pfd.SampleSize, ShouldEqual, 1000)
		So(*all.Pfd.NullEqualsNull, ShouldBeTrue)
	})
}
