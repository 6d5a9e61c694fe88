package apierr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_NotFound(t *testing.T) {
	out := Format(NewNotFoundError("foobar not found"))

	assert.Equal(t, "foobar not found", out.Message)
	assert.Equal(t, "ERR_NOT_FOUND", out.Code)
	assert.Nil(t, out.Stack)
	assert.Nil(t, out.Validation)
	assert.Equal(t, map[string]any{"message": "foobar not found", "code": "ERR_NOT_FOUND"}, out.Fields())
}

func TestFormat_Gone(t *testing.T) {
	out := Format(NewGoneError("foobar was deleted"))

	assert.Equal(t, map[string]any{"message": "foobar was deleted", "code": "ERR_GONE"}, out.Fields())
}

func TestFormat_ImplementationHidden(t *testing.T) {
	out := Format(NewImplementationError("foobar error"))

	assert.Equal(t, map[string]any{"message": "Internal Server Error"}, out.Fields())
}

func TestFormat_ImplementationExposed(t *testing.T) {
	out := Format(NewImplementationError("foobar error"), Options{ExposeErrors: true})

	assert.Equal(t, "foobar error", out.Message)
	assert.Equal(t, "ERR_IMPLEMENTATION_ERROR", out.Code)
	require.NotEmpty(t, out.Stack)
	assert.Equal(t, "ImplementationError: foobar error", out.Stack[0])
}

func TestFormat_InfoNeverOverridesStandardFields(t *testing.T) {
	err := NewConnectionError("Cannot connect to api.example.com").WithInfo(map[string]any{
		"customProp": "foo",
		"message":    "bar",
		"stack":      "foobar",
	})

	out := Format(err, Options{ExposeErrors: true})
	fields := out.Fields()

	assert.Equal(t, "foo", fields["customProp"])
	assert.Equal(t, "Cannot connect to api.example.com", fields["message"])
	assert.NotEqual(t, "foobar", fields["stack"])
	assert.IsType(t, []string{}, fields["stack"])
	assert.NotContains(t, out.Extra, "message")
	assert.NotContains(t, out.Extra, "stack")
}

func TestFormat_InfoFillsAbsentStandardKeys(t *testing.T) {
	err := New("plain failure").WithInfo(map[string]any{
		"code":       "UPSTREAM_502",
		"validation": "n/a",
	})

	out := Format(err, Options{ExposeErrors: true})

	assert.Empty(t, out.Code)
	assert.Equal(t, "UPSTREAM_502", out.Fields()["code"])
	assert.Equal(t, "n/a", out.Fields()["validation"])
}

func TestFormat_InfoHiddenWithoutExpose(t *testing.T) {
	err := NewNotFoundError("missing").WithInfo(map[string]any{"table": "users"})

	out := Format(err)

	assert.Nil(t, out.Extra)
	assert.NotContains(t, out.Fields(), "table")
}

func TestFormat_ValidationDefaultOptions(t *testing.T) {
	out := Format(NewValidationError("foobar error", "META"))

	assert.Equal(t, "foobar error", out.Message)
	assert.Equal(t, "ERR_VALIDATION_ERROR", out.Code)
	assert.Equal(t, "META", out.Validation)
}

func TestFormat_SensitiveTierIsOpaque(t *testing.T) {
	for _, kind := range Kinds() {
		if kind.IsSafe() || kind == KindValidation {
			continue
		}
		t.Run(kind.Name(), func(t *testing.T) {
			err := NewKind(kind, "secret detail").WithInfo(map[string]any{"dsn": "postgres://u:p@db"})

			out := Format(err, Options{ExposeErrors: false})

			assert.Equal(t, Output{Message: FallbackMessage}, out)
		})
	}
}

func TestFormat_NeverStackWithoutExpose(t *testing.T) {
	for kind, ctor := range constructors {
		t.Run(kind.Name(), func(t *testing.T) {
			out := Format(ctor("x"), Options{})
			assert.Nil(t, out.Stack)
			assert.NotContains(t, out.Fields(), "stack")
		})
	}
}

func TestFormat_GenericKindHasNoCode(t *testing.T) {
	out := Format(New("boom"), Options{ExposeErrors: true})

	assert.Equal(t, "boom", out.Message)
	assert.Empty(t, out.Code)
	assert.NotContains(t, out.Fields(), "code")
}

func TestFormat_Idempotent(t *testing.T) {
	err := NewConnectionError("down").WithInfo(map[string]any{"host": "db"})
	opts := Options{ExposeErrors: true}

	first := Format(err, opts)
	second := Format(err, opts)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]any{"host": "db"}, err.Info())
}

func TestFormat_DoesNotAliasError(t *testing.T) {
	err := NewImplementationError("bug")
	out := Format(err, Options{ExposeErrors: true})
	out.Stack[0] = "tampered"

	assert.Equal(t, "ImplementationError: bug", err.Stack()[0])
}

func TestFormat_NilError(t *testing.T) {
	assert.Equal(t, Output{Message: FallbackMessage}, Format(nil))
	assert.Equal(t, Output{Message: FallbackMessage}, Format(nil, Options{ExposeErrors: true}))
}

func TestOutput_MarshalJSON(t *testing.T) {
	err := NewValidationError("invalid payload", map[string]string{"email": "required"})

	data, marshalErr := json.Marshal(Format(err))
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{
		"message": "invalid payload",
		"code": "ERR_VALIDATION_ERROR",
		"validation": {"email": "required"}
	}`, string(data))
}

func TestOutput_MarshalJSON_Extra(t *testing.T) {
	err := NewDataError("checksum mismatch").WithInfo(map[string]any{"row": 42})

	data, marshalErr := json.Marshal(Format(err, Options{ExposeErrors: true}))
	require.NoError(t, marshalErr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "checksum mismatch", decoded["message"])
	assert.Equal(t, "ERR_DATA_ERROR", decoded["code"])
	assert.Equal(t, float64(42), decoded["row"])
	assert.NotEmpty(t, decoded["stack"])
}

func TestOutput_FieldsKeepsStandardFieldsOverExtra(t *testing.T) {
	out := Output{
		Message: "real",
		Extra:   map[string]any{"message": "fake", "hint": "retry later"},
	}

	fields := out.Fields()
	assert.Equal(t, "real", fields["message"])
	assert.Equal(t, "retry later", fields["hint"])
}

func TestError_MarshalJSONUsesDefaultDisclosure(t *testing.T) {
	data, err := json.Marshal(NewDataError("replica lag on db-3"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, string(data))

	data, err = json.Marshal(NewNotFoundError("no such user"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"no such user","code":"ERR_NOT_FOUND"}`, string(data))
}
