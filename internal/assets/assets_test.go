package assets

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigParses(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(ExampleConfig)))

	assert.Equal(t, "smtp.gmail.com", v.GetString("smtp.host"))
	assert.Equal(t, 587, v.GetInt("smtp.port"))
	assert.Equal(t, "mandatory", v.GetString("smtp.starttls"))
	assert.Equal(t, "120s", v.GetString("gemini.timeout"))
}
