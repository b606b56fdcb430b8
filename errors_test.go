package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestFatalErrorCarriesMessage(t *testing.T) {
	var err error = &FatalError{Message: "Preprocessor bug! unbalanced #endfile"}
	be.Equal(t, err.Error(), "Preprocessor bug! unbalanced #endfile")
}
