package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var password = strings.Repeat("p", 32)

const testPublicKey = `-----BEGIN PUBLIC KEY-----
MFwwDQYJKoZIhvcNAQEBBQADSwAwSAJBAM9cLKL1D8HVEcxDw8ihO1LEC/KdGvuL
zmYAB0pqDyB50zl4pGzdnldnYAvY9FsQyB9sIpLuLfb+wwuZ7w/MW1UCAwEAAQ==
-----END PUBLIC KEY-----
`

type keyConfig struct {
	Password string `validate:"required,len=32"`
	Public   string `validate:"required,pem"`
	Hash     string `validate:"omitempty,oneof=sha224 sha256 sha384 sha512"`
}

func TestStruct(t *testing.T) {
	v := New()

	err := v.Struct(&keyConfig{
		Password: password,
		Public:   testPublicKey,
		Hash:     "sha512",
	})
	assert.NoError(t, err)

	err = v.Struct(&keyConfig{Password: "short", Public: "not pem", Hash: "md5"})
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.True(t, verrs.HasErrors())
	assert.Len(t, verrs.Errors(), 3)
	assert.Equal(t, "len", FieldErrorTag(err, "Password"))
	assert.Equal(t, "pem", FieldErrorTag(err, "Public"))
	assert.Equal(t, "oneof", FieldErrorTag(err, "Hash"))
	assert.False(t, HasFieldError(err, "Private"))
}

func TestPEMMessage(t *testing.T) {
	v := New()

	err := v.Struct(&keyConfig{Password: password, Public: "garbage"})
	require.Error(t, err)

	verrs := err.(ValidationErrors)
	fe := verrs.Errors()[0]
	assert.Equal(t, "Public", fe.Field())
	assert.Equal(t, "garbage", fe.Value())
	assert.Equal(t, "Public must contain a PEM encoded block", fe.Message())
	assert.Equal(t, "Public必须包含PEM编码块", fe.Translate("zh"))
	assert.Equal(t, fe.Message(), fe.Translate("fr"))
	assert.Equal(t, fe.Message(), err.Error())
}

func TestDefaultLang(t *testing.T) {
	v := New(WithDefaultLang("zh"))

	err := v.Struct(&keyConfig{Password: password, Public: "garbage"})
	require.Error(t, err)
	assert.Equal(t, "Public必须包含PEM编码块", err.Error())
}

func TestStructCtx(t *testing.T) {
	v := New(WithTagName("check"))

	type input struct {
		Name string `check:"required"`
	}
	assert.NoError(t, v.StructCtx(context.Background(), &input{Name: "rsa"}))
	assert.True(t, HasFieldError(v.StructCtx(context.Background(), &input{}), "Name"))
}

func TestNilTarget(t *testing.T) {
	assert.Error(t, Validate.Struct(nil))
	assert.NotNil(t, Validate.GetValidator())
}
