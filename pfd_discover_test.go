package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"rds-pfd/partial_fd/format"
	"rds-pfd/rock-share/base/config"
)

const peopleCsv = "zip,city,name\n1,a,x\n1,a,y\n2,b,z\n2,b,w\n3,c,v\n"

func writeCsv(t *testing.T, content string) string {
	p := path.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDiscoverPfd(t *testing.T) {
	Convey("TestDiscoverPfd", t, func() {
		p := writeCsv(t, peopleCsv)
		dir := t.TempDir()
		result, err := DiscoverPfd(context.Background(), &PFDRequest{Path: p, Rhs: []string{"city"}}, dir)
		So(err, ShouldBeNil)
		So(path.Dir(result.Path), ShouldEqual, dir)

		var found []string
		for _, dependency := range result.Dependencies {
			found = append(found, dependency.String())
		}
		So(found, ShouldResemble, []string{"[name]→city", "[zip]→city"})

		written, err := format.ReadResultYaml(result.Path)
		So(err, ShouldBeNil)
		So(written.Relation, ShouldEqual, "people")
		So(written.NumRows, ShouldEqual, 5)
		So(len(written.Dependencies), ShouldEqual, 2)
		So(written.Profiling.NumDependencies, ShouldEqual, 2)

		Convey("unknown rhs", func() {
			_, err := DiscoverPfd(context.Background(), &PFDRequest{Path: p, Rhs: []string{"age"}}, dir)
			So(err, ShouldNotBeNil)
		})

		Convey("invalid parameter", func() {
			_, err := DiscoverPfd(context.Background(), &PFDRequest{Path: p, Confidence: 1.5}, dir)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRequestConfiguration(t *testing.T) {
	Convey("TestRequestConfiguration", t, func() {
		pfd := config.Default().Pfd
		pfd.SampleSize = -1
		pfd.MaxError = 0.02

		c := (&PFDRequest{}).Configuration(pfd)
		So(c.MaxError, ShouldEqual, 0.02)
		So(c.SampleSize, ShouldEqual, -1)
		So(c.EstimateConfidence, ShouldEqual, 0.9)

		zero := 0.0
		c = (&PFDRequest{MaxError: &zero, Confidence: 0.95, SampleSize: 50, MaxArity: 2}).Configuration(pfd)
		So(c.MaxError, ShouldEqual, 0)
		So(c.EstimateConfidence, ShouldEqual, 0.95)
		So(c.SampleSize, ShouldEqual, 50)
		So(c.MaxArity, ShouldEqual, 2)
	})
}

func TestStart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Convey("TestStart", t, func() {
		config.All = config.Default()
		config.All.Server.ResultDir = t.TempDir()
		router := newRouter()
		post := func(body string) (int, map[string]any) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/pfd", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			response := map[string]any{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			return w.Code, response
		}

		p := writeCsv(t, peopleCsv)
		body, _ := json.Marshal(map[string]any{"path": p, "rhs": []string{"city"}, "max_error": 0})
		code, response := post(string(body))
		So(code, ShouldEqual, http.StatusOK)
		So(response["success"], ShouldEqual, true)
		So(response["fd_size"], ShouldEqual, float64(2))

		code, _ = post(`{"max_error": 0.1}`)
		So(code, ShouldEqual, http.StatusBadRequest)

		body, _ = json.Marshal(map[string]any{"path": path.Join(t.TempDir(), "missing.csv")})
		code, response = post(string(body))
		So(code, ShouldEqual, http.StatusOK)
		So(response["success"], ShouldEqual, false)

		Reset(func() {
			config.All = nil
		})
	})
}
