package tracker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/formtrack/internal/adapter"
	"github.com/mouse-blink/formtrack/pkg/dom"
)

const profileHTML = `<!DOCTYPE html>
<html><body>
<form id="profile">
  <label for="name" class="control-changed">Name</label>
  <input type="text" id="name" name="name" value="Ada">
  <textarea name="bio">Hello</textarea>
  <label id="terms-label"><input type="checkbox" name="terms"> Terms</label>
  <input type="radio" id="plan-free" name="plan" value="free" checked>
  <label for="plan-free">Free</label>
  <input type="radio" id="plan-pro" name="plan" value="pro">
  <label for="plan-pro">Pro</label>
  <select name="country"><option>DE</option><option selected>FR</option><option>ES</option></select>
  <select name="tags" multiple><option>a</option><option>b</option><option>c</option><option>d</option><option>e</option></select>
  <input type="file" name="avatar">
  <input type="hidden" name="token" value="secret">
  <input type="text" value="anonymous">
  <input type="submit" value="Save">
  <button type="reset">Reset</button>
</form>
</body></html>`

func parse(t *testing.T, src string) *adapter.HTMLDocument {
	t.Helper()

	doc, err := adapter.ParseHTML(strings.NewReader(src))
	require.NoError(t, err)

	return doc
}

func first(t *testing.T, doc *adapter.HTMLDocument, selector string) dom.Element {
	t.Helper()

	el, err := doc.First(selector)
	require.NoError(t, err)
	require.NotNil(t, el, "no element matches %s", selector)

	return el
}

func disabled(el dom.Element) bool {
	_, ok := el.Attribute("disabled")
	return ok
}

func hidden(el dom.Element) bool {
	_, ok := el.Attribute("hidden")
	return ok
}
