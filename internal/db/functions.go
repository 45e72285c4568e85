package db

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"modernc.org/sqlite"
)

// FoldFunc is the SQL name of the Unicode case-folding function registered on
// every connection. SQLite's built-in lower() only folds ASCII.
const FoldFunc = "fold"

var (
	registerOnce sync.Once
	registerErr  error
)

// Fold applies the same Unicode case folding as the SQL fold() function.
func Fold(s string) string {
	return cases.Fold().String(s)
}

func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction(FoldFunc, 1,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case nil:
					return nil, nil
				case string:
					return Fold(v), nil
				case []byte:
					return Fold(string(v)), nil
				default:
					return nil, fmt.Errorf("%s: unsupported argument type %T", FoldFunc, v)
				}
			})
	})
	return registerErr
}
