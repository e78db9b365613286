package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mu        sync.Mutex
	funcCount = make(map[string]int)
)

// ValidateSnapshot compares obj as indented JSON to testdata/<func>-<n>.json
// n counts the calls made from the same test function. A missing snapshot
// file is written from obj.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	mu.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		create(t, filename, objJSON)
		return
	}
	require.NoError(t, err)

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func create(t *testing.T, filename string, objJSON []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, append(objJSON, '\n'), 0644))
}
