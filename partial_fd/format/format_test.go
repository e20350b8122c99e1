package format

import (
	"bytes"
	"errors"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"rds-pfd/partial_fd/core"
	"rds-pfd/partial_fd/model"
	"rds-pfd/partial_fd/search"
	"rds-pfd/utils"
)

func testDependencies() []search.Dependency {
	schema, err := model.NewSchema("t0", []string{"name", "city", "zip"})
	if err != nil {
		panic(err)
	}
	return []search.Dependency{
		{Lhs: schema.VerticalOf(2), Rhs: schema.Column(1), Error: 0.002, Score: 0.499},
		{Lhs: schema.VerticalOf(0, 2), Rhs: schema.Column(1), Error: 0, Score: 1.0 / 3},
	}
}

func TestRenderDependencies(t *testing.T) {
	Convey("TestRenderDependencies", t, func() {
		buf := &bytes.Buffer{}
		RenderDependencies(buf, testDependencies())
		out := buf.String()
		So(out, ShouldContainSubstring, "PARTIAL FUNCTIONAL DEPENDENCIES")
		So(out, ShouldContainSubstring, "[zip]")
		So(out, ShouldContainSubstring, "[name, zip]")
		So(out, ShouldContainSubstring, "0.002000")
		So(out, ShouldContainSubstring, "TOTAL")
	})
}

func TestRenderProfiling(t *testing.T) {
	Convey("TestRenderProfiling", t, func() {
		buf := &bytes.Buffer{}
		RenderProfiling(buf, core.ProfilingSnapshot{NumDependencies: 4, DependencyArity: 6, NumErrorCalculations: 9})
		out := buf.String()
		So(out, ShouldContainSubstring, "PROFILING")
		So(out, ShouldContainSubstring, "1.50")
		So(out, ShouldContainSubstring, "exact error")
	})
}

func TestWriteResultYaml(t *testing.T) {
	Convey("TestWriteResultYaml", t, func() {
		dir := t.TempDir()
		result := &ResultFile{
			TaskId:        1700000000000,
			Relation:      "t0",
			NumRows:       10,
			Configuration: core.DefaultConfiguration(),
			Dependencies:  NewDependencyRecords(testDependencies()),
			Profiling:     core.ProfilingSnapshot{NumDependencies: 2, DependencyArity: 3},
		}
		p, err := WriteResultYaml(path.Join(dir, "result"), result)
		So(err, ShouldBeNil)
		So(path.Base(p), ShouldEqual, "1700000000000.yml")

		read, err := ReadResultYaml(p)
		So(err, ShouldBeNil)
		So(read.Dependencies, ShouldResemble, result.Dependencies)
		So(read.Dependencies[1].Lhs, ShouldResemble, []string{"name", "zip"})
		So(read.Configuration, ShouldResemble, result.Configuration)

		Convey("unwritable directory", func() {
			file := path.Join(dir, "occupied")
			So(os.WriteFile(file, []byte("x"), 0644), ShouldBeNil)
			_, err := WriteResultYaml(path.Join(file, "sub"), result)
			So(errors.Is(err, utils.ErrWriteResult), ShouldBeTrue)
		})
	})
}
