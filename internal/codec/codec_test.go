package codec_test

import (
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iapstore/internal/codec"
	"iapstore/internal/domain"
)

func populatedState() domain.State {
	s := domain.NewState()
	s.UpdateOffset = domain.Offset("OFFSET_X")
	s.EntitledSKUs["sku.gold"] = struct{}{}
	s.EntitledSKUs["sku.bronze"] = struct{}{}
	s.Pending = []domain.PurchaseTransaction{
		{Result: 0, SKU: "sku.gold", ProductType: domain.ProductEntitled, TransactionID: "t1", PurchaseToken: "tok1"},
		{Result: 3, SKU: "coins<100>&more", ProductType: domain.ProductConsumable, TransactionID: "t2", PurchaseToken: "tok2"},
	}
	return s
}

func assertGolden(t *testing.T, name string, data []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

func TestEncode_Golden(t *testing.T) {
	data, err := codec.Encode(populatedState())
	require.NoError(t, err)
	assertGolden(t, "populated_state", data)

	data, err = codec.Encode(domain.NewState())
	require.NoError(t, err)
	assertGolden(t, "default_state", data)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := populatedState()
	data, err := codec.Encode(want)
	require.NoError(t, err)

	got, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, want.UpdateOffset, got.UpdateOffset)
	assert.Equal(t, want.EntitledSKUs, got.EntitledSKUs)
	assert.Equal(t, want.Pending, got.Pending)
}

func TestDecode_EmptyCollections(t *testing.T) {
	got, err := codec.Decode([]byte(`{"PurchaseUpdateOffset":"BEGINNING","EntitledSKUs":[],"PendingPuchaseTransactions":[]}`))
	require.NoError(t, err)
	assert.True(t, got.UpdateOffset.IsBeginning())
	assert.Empty(t, got.EntitledSKUs)
	assert.Empty(t, got.Pending)
}

func TestDecode_DuplicateSKUsCollapse(t *testing.T) {
	got, err := codec.Decode([]byte(`{"PurchaseUpdateOffset":"o","EntitledSKUs":[{"SKU":"a"},{"SKU":"a"}],"PendingPuchaseTransactions":[]}`))
	require.NoError(t, err)
	assert.Len(t, got.EntitledSKUs, 1)
}

func TestEncode_RejectsInvalidState(t *testing.T) {
	s := domain.NewState()
	s.UpdateOffset = ""
	_, err := codec.Encode(s)
	assert.ErrorIs(t, err, domain.ErrInvalidOffset)

	s = domain.NewState()
	s.Pending = []domain.PurchaseTransaction{{SKU: "x", TransactionID: "1"}}
	_, err = codec.Encode(s)
	var uv *domain.UnknownVariantError
	assert.True(t, errors.As(err, &uv))

	s = domain.NewState()
	s.EntitledSKUs["a\xff"] = struct{}{}
	_, err = codec.Encode(s)
	assert.ErrorIs(t, err, domain.ErrInvalidText)

	s = domain.NewState()
	s.Pending = []domain.PurchaseTransaction{{SKU: "x", TransactionID: "1\xfe", ProductType: domain.ProductConsumable}}
	_, err = codec.Encode(s)
	assert.ErrorIs(t, err, domain.ErrInvalidText)
}

func TestDecode_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
		path string
	}{
		{"not json", `{"PurchaseUpdateOffset":`, codec.ErrMalformed, "$"},
		{"not object", `[]`, codec.ErrWrongType, "$"},
		{"missing offset", `{"EntitledSKUs":[],"PendingPuchaseTransactions":[]}`, codec.ErrMissingField, "$.PurchaseUpdateOffset"},
		{"missing entitled", `{"PurchaseUpdateOffset":"o","PendingPuchaseTransactions":[]}`, codec.ErrMissingField, "$.EntitledSKUs"},
		{"missing pending", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[]}`, codec.ErrMissingField, "$.PendingPuchaseTransactions"},
		{"unknown root field", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[],"PendingPuchaseTransactions":[],"Extra":1}`, codec.ErrUnknownField, "$.Extra"},
		{"duplicate root field", `{"PurchaseUpdateOffset":"o","PurchaseUpdateOffset":"p","EntitledSKUs":[],"PendingPuchaseTransactions":[]}`, codec.ErrDuplicateField, "$.PurchaseUpdateOffset"},
		{"offset not string", `{"PurchaseUpdateOffset":5,"EntitledSKUs":[],"PendingPuchaseTransactions":[]}`, codec.ErrWrongType, "$.PurchaseUpdateOffset"},
		{"offset empty", `{"PurchaseUpdateOffset":"","EntitledSKUs":[],"PendingPuchaseTransactions":[]}`, domain.ErrInvalidOffset, "$.PurchaseUpdateOffset"},
		{"entitled not array", `{"PurchaseUpdateOffset":"o","EntitledSKUs":{},"PendingPuchaseTransactions":[]}`, codec.ErrWrongType, "$.EntitledSKUs"},
		{"entitlement not object", `{"PurchaseUpdateOffset":"o","EntitledSKUs":["a"],"PendingPuchaseTransactions":[]}`, codec.ErrWrongType, "$.EntitledSKUs[0]"},
		{"entitlement sku number", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[{"SKU":1}],"PendingPuchaseTransactions":[]}`, codec.ErrWrongType, "$.EntitledSKUs[0].SKU"},
		{"result float", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[],"PendingPuchaseTransactions":[{"Result":1.5,"SKU":"a","ProductType":"ENTITLED","TransactionID":"1","PurchaseToken":"t"}]}`, codec.ErrWrongType, "$.PendingPuchaseTransactions[0].Result"},
		{"result string", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[],"PendingPuchaseTransactions":[{"Result":"0","SKU":"a","ProductType":"ENTITLED","TransactionID":"1","PurchaseToken":"t"}]}`, codec.ErrWrongType, "$.PendingPuchaseTransactions[0].Result"},
		{"missing token", `{"PurchaseUpdateOffset":"o","EntitledSKUs":[],"PendingPuchaseTransactions":[{"Result":0,"SKU":"a","ProductType":"ENTITLED","TransactionID":"1"}]}`, codec.ErrMissingField, "$.PendingPuchaseTransactions[0].PurchaseToken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var de *codec.DocumentError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
			assert.Nil(t, got.EntitledSKUs, "no partial state on error")
		})
	}
}

func TestDecode_UnknownProductType(t *testing.T) {
	doc := `{"PurchaseUpdateOffset":"o","EntitledSKUs":[{"SKU":"a"}],"PendingPuchaseTransactions":[{"Result":0,"SKU":"a","ProductType":"RENTAL","TransactionID":"1","PurchaseToken":"t"}]}`
	got, err := codec.Decode([]byte(doc))
	var uv *domain.UnknownVariantError
	require.True(t, errors.As(err, &uv))
	assert.Equal(t, "RENTAL", uv.Token)
	assert.Nil(t, got.EntitledSKUs)
	assert.Nil(t, got.Pending)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := codec.Decode([]byte{'{', '"', 0xff, '"', ':', '1', '}'})
	assert.ErrorIs(t, err, codec.ErrMalformed)
}
