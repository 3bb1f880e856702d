package icon_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
	"github.com/icarusdb/icdb/pkg/icon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		res   string
		err   bool
	}{
		{"simple", "/Game/Assets/2DArt/UI/Foo/Bar.Bar", "Foo/Bar", false},
		{"nested", "/Game/Assets/2DArt/UI/Items/Tools/ITEM_Axe.ITEM_Axe",
			"Items/Tools/ITEM_Axe", false},
		{"asymmetrical", "/Game/Assets/2DArt/UI/Foo/Bar.Baz", "", true},
		{"no slash", "/Game/Assets/2DArt/UI/Bar.Bar", "", true},
		{"no dot", "/Game/Assets/2DArt/UI/Foo/Bar", "", true},
		{"two dots", "/Game/Assets/2DArt/UI/Foo/Bar.Bar.Bar", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := icon.Process(tt.input)
			if tt.err {
				require.Error(t, err)
				gnErr, ok := err.(*gn.Error)
				require.True(t, ok)
				assert.Equal(t, errcode.IconFormatError, gnErr.Code)
				assert.Equal(t, tt.input, gnErr.Vars[0])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.res, res)
		})
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, icon.HasPrefix("/Game/Assets/2DArt/UI/Foo/Bar.Bar"))
	assert.False(t, icon.HasPrefix("/Game/Assets/Dev/Foo.Foo"))
	assert.False(t, icon.HasPrefix(""))
}
