package easyverein_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

func TestListOptionsToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *easyverein.ListOptions
		expected url.Values
	}{
		{
			name:     "nil options",
			opts:     nil,
			expected: url.Values{},
		},
		{
			name:     "empty options",
			opts:     easyverein.NewListOptions(),
			expected: url.Values{},
		},
		{
			name:     "limit and page",
			opts:     easyverein.NewListOptions().WithLimit(50).WithPage(2),
			expected: url.Values{"limit": []string{"50"}, "page": []string{"2"}},
		},
		{
			name:     "field projection",
			opts:     easyverein.NewListOptions().WithQuery("{id,value}"),
			expected: url.Values{"query": []string{"{id,value}"}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.opts.ToValues())
		})
	}
}

func TestEncodeFilterEmpty(t *testing.T) {
	t.Parallel()

	values, err := easyverein.EncodeFilter(&easyverein.MemberFilter{})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncodeFilterNil(t *testing.T) {
	t.Parallel()

	values, err := easyverein.EncodeFilter(nil)
	require.NoError(t, err)
	assert.Empty(t, values)

	var filter *easyverein.InvoiceFilter

	values, err = easyverein.EncodeFilter(filter)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncodeFilterOnlySetFields(t *testing.T) {
	t.Parallel()

	filter := &easyverein.InvoiceFilter{
		TotalPriceGTE: easyverein.Ptr(100.0),
		IsDraft:       easyverein.Ptr(false),
	}

	values, err := easyverein.EncodeFilter(filter)
	require.NoError(t, err)

	assert.Len(t, values, 2)
	assert.Equal(t, "100", values.Get("totalPrice__gte"))
	assert.Equal(t, "False", values.Get("isDraft"))
}

func TestEncodeFilterBooleans(t *testing.T) {
	t.Parallel()

	filter := &easyverein.MemberFilter{
		IsApplication:         easyverein.Ptr(true),
		ResignationDateIsNull: easyverein.Ptr(false),
	}

	values, err := easyverein.EncodeFilter(filter)
	require.NoError(t, err)

	assert.Equal(t, "True", values.Get("_isApplication"))
	assert.Equal(t, "False", values.Get("resignationDate__isnull"))
}

func TestEncodeFilterLists(t *testing.T) {
	t.Parallel()

	filter := &easyverein.MemberFilter{
		IDIn:               easyverein.IntList{1, 2, 3},
		MembershipNumberIn: easyverein.StrList{"A-1", "A-2"},
	}

	values, err := easyverein.EncodeFilter(filter)
	require.NoError(t, err)

	assert.Equal(t, "1,2,3", values.Get("id__in"))
	assert.Equal(t, "A-1,A-2", values.Get("membershipNumber__in"))
}

func TestEncodeFilterEmptyListOmitted(t *testing.T) {
	t.Parallel()

	filter := &easyverein.MemberFilter{IDIn: easyverein.IntList{}}

	values, err := easyverein.EncodeFilter(filter)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncodeFilterDateAndTimestamp(t *testing.T) {
	t.Parallel()

	start := easyverein.NewDate(2024, 1, 15)
	filter := &easyverein.MemberMemberGroupFilter{
		StartGTE: &start,
	}

	values, err := easyverein.EncodeFilter(filter)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", values.Get("start__gte"))
}

func TestEncodeFilterRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := easyverein.EncodeFilter(42)
	require.ErrorIs(t, err, easyverein.ErrFilterNotStruct)

	_, err = easyverein.EncodeFilter("nope")
	require.ErrorIs(t, err, easyverein.ErrFilterNotStruct)
}

func TestMergeValues(t *testing.T) {
	t.Parallel()

	dst := url.Values{"limit": []string{"10"}}
	src := url.Values{"limit": []string{"50"}, "deleted": []string{"True"}}

	easyverein.MergeValues(dst, src)

	assert.Equal(t, "50", dst.Get("limit"))
	assert.Equal(t, "True", dst.Get("deleted"))
}

func TestListOptionsWithLimitClampsToMaxPageSize(t *testing.T) {
	t.Parallel()

	opts := easyverein.NewListOptions().WithLimit(500)
	assert.Equal(t, easyverein.MaxPageSize, opts.Limit)

	opts = easyverein.NewListOptions().WithLimit(easyverein.MaxPageSize)
	assert.Equal(t, easyverein.MaxPageSize, opts.Limit)
}
