package utils

import (
	"context"
	"errors"
	"os"
	"path"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeCsv(t *testing.T, name, content string) string {
	p := path.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadRelationCsv(t *testing.T) {
	ctx := context.Background()
	Convey("TestLoadRelationCsv", t, func() {
		Convey("values and nulls", func() {
			p := writeCsv(t, "people.csv", "name,city,zip\na,x,1\nb,x,\nc,y,\n")
			r, err := LoadRelationCsv(ctx, p, true)
			So(err, ShouldBeNil)
			So(r.Schema().Name(), ShouldEqual, "people")
			So(r.NumRows(), ShouldEqual, 3)
			So(r.NumColumns(), ShouldEqual, 3)
			So(r.ColumnPli(1).Clusters(), ShouldResemble, [][]int32{{0, 1}})
			// 空值相等时两行空zip在一个簇里
			So(r.ColumnPli(2).Clusters(), ShouldResemble, [][]int32{{1, 2}})

			distinct, err := LoadRelationCsv(ctx, p, false)
			So(err, ShouldBeNil)
			So(distinct.ColumnPli(2).NumClusters(), ShouldEqual, 0)

			columns, err := ColumnsByName(r, []string{"zip", "name"})
			So(err, ShouldBeNil)
			So(columns[0].Index(), ShouldEqual, 2)
			_, err = ColumnsByName(r, []string{"age"})
			So(errors.Is(err, ErrColumnNotExist), ShouldBeTrue)
		})

		Convey("missing file", func() {
			_, err := LoadRelationCsv(ctx, path.Join(t.TempDir(), "missing.csv"), true)
			So(errors.Is(err, ErrOpenCsv), ShouldBeTrue)
		})

		Convey("header only", func() {
			_, err := LoadRelationCsv(ctx, writeCsv(t, "empty.csv", "a,b\n"), true)
			So(errors.Is(err, ErrEmptyRelation), ShouldBeTrue)
		})

		Convey("duplicate column", func() {
			_, err := LoadRelationCsv(ctx, writeCsv(t, "dup.csv", "a,a\n1,2\n"), true)
			So(errors.Is(err, ErrDuplicateName), ShouldBeTrue)

			// 去掉空格后重名也算
			_, err = LoadRelationCsv(ctx, writeCsv(t, "dup2.csv", "a,b, b\n1,2,3\n"), true)
			So(errors.Is(err, ErrDuplicateName), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, ": b")
		})

		Convey("first duplicate", func() {
			name, ok := firstDuplicate([]string{"x", "y", "z", "y", "x"})
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "y")
			_, ok = firstDuplicate([]string{"x", "y"})
			So(ok, ShouldBeFalse)
		})
	})
}
