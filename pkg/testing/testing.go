package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the repo root so tests resolve .env/logs paths consistently.
	// usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/stevedicko99-pixel/Aircraft-PMP/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
