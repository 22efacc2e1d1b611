package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvHeader = "name,brand,price,display,camera,battery,storage,ram,processor,os,features,releaseDate,colors,availability,url\n"

func TestParseCSV(t *testing.T) {
	input := csvHeader +
		`iPhone 15,Apple,299.9,6.1 inches,48MP,3349 mAh,128GB,6GB,A16 Bionic,iOS 17,"Dynamic Island,USB-C, Face ID",2023-09-22,"Black,Blue",true,https://apple.com/iphone-15` + "\n" +
		`Galaxy S24,Samsung,,6.2 inches,50MP,4000 mAh,256GB,8GB,Exynos 2400,Android 14,,,,no,` + "\n" +
		`,Nokia,10,,,,,,,,,,,,` + "\n" +
		`Pixel 8,Google,abc,,,,,,,,,,,,` + "\n" +
		`Pixel 9,Google,1,,,,,,,,,,,maybe,` + "\n" +
		",,,,,,,,,,,,,,\n"

	phones, rowErrs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, phones, 2)

	iphone := phones[0]
	assert.Equal(t, "apple-iphone-15", iphone.ID)
	assert.Equal(t, "Apple", iphone.Brand)
	require.NotNil(t, iphone.Price)
	assert.Equal(t, "299.900", money.Format(*iphone.Price))
	assert.Equal(t, []string{"Dynamic Island", "USB-C", "Face ID"}, iphone.Features)
	assert.Equal(t, []string{"Black", "Blue"}, iphone.Colors)
	assert.Equal(t, "A16 Bionic", iphone.Specs.Processor)
	assert.True(t, iphone.Available)
	assert.Equal(t, "https://apple.com/iphone-15", iphone.SourceURL)

	galaxy := phones[1]
	assert.Nil(t, galaxy.Price)
	assert.False(t, galaxy.Available)
	assert.Empty(t, galaxy.Features)

	require.Len(t, rowErrs, 3)
	assert.Equal(t, 4, rowErrs[0].Row)
	assert.Equal(t, 5, rowErrs[1].Row)
	assert.Contains(t, rowErrs[1].Message, "invalid price")
	assert.Contains(t, rowErrs[2].Message, "invalid availability")
}

func TestParseCSV_InvalidHeader(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing columns", input: "name,brand,price\n"},
		{name: "wrong order", input: "brand,name,price,display,camera,battery,storage,ram,processor,os,features,releaseDate,colors,availability,url\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseCSV(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func TestWriteCSVTemplate_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSVTemplate(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), strings.TrimSuffix(csvHeader, "\n")))

	phones, rowErrs, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, phones, 1)
	assert.Equal(t, []string{"Dynamic Island", "USB-C", "Face ID"}, phones[0].Features)
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &Header))
	row := []string{"Galaxy A55", "Samsung", "120.5", "6.6\"", "50MP", "5000 mAh", "128GB", "8GB", "Exynos 1480", "Android 14", "IP67,eSIM", "2024-03", "Navy", "yes", ""}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	phones, rowErrs, err := ParseExcel(buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, phones, 1)
	assert.Equal(t, "samsung-galaxy-a55", phones[0].ID)
	assert.Equal(t, "120.500", money.Format(*phones[0].Price))
	assert.Equal(t, []string{"IP67", "eSIM"}, phones[0].Features)
}

func TestParseExcel_NotAWorkbook(t *testing.T) {
	_, _, err := ParseExcel(strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestPhoneID(t *testing.T) {
	assert.Equal(t, "apple-iphone-15-pro-max", PhoneID("Apple", "iPhone 15 Pro Max"))
	assert.Equal(t, "samsung-galaxy-s24", PhoneID("Samsung", "Samsung Galaxy S24"))
	assert.Equal(t, "xiaomi-redmi-note-13-5g", PhoneID("Xiaomi", "  Redmi Note 13 (5G) "))
}
