package ml_parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ngnorm-go/packages/compiler/ml_parser"
)

// humanizeDom flattens a parse result into [kind, value, depth] rows
func humanizeDom(t *testing.T, result *ml_parser.ParseTreeResult) []interface{} {
	t.Helper()
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", result.Errors)
	}
	humanizer := &nodeHumanizer{}
	ml_parser.VisitAll(humanizer, result.RootNodes, 0)
	return humanizer.result
}

type nodeHumanizer struct {
	result []interface{}
}

func (h *nodeHumanizer) VisitElement(ast *ml_parser.Element, context interface{}) interface{} {
	depth := context.(int)
	h.result = append(h.result, []interface{}{"Element", ast.Name, depth})
	ml_parser.VisitAll(h, nodesOf(ast.Attrs), depth+1)
	ml_parser.VisitAll(h, ast.Children, depth+1)
	return nil
}

func (h *nodeHumanizer) VisitAttribute(ast *ml_parser.Attribute, context interface{}) interface{} {
	h.result = append(h.result, []interface{}{"Attribute", ast.Name, ast.Value, context.(int)})
	return nil
}

func (h *nodeHumanizer) VisitText(ast *ml_parser.Text, context interface{}) interface{} {
	h.result = append(h.result, []interface{}{"Text", ast.Value, context.(int)})
	return nil
}

func (h *nodeHumanizer) VisitComment(ast *ml_parser.Comment, context interface{}) interface{} {
	h.result = append(h.result, []interface{}{"Comment", ast.Value, context.(int)})
	return nil
}

func nodesOf(attrs []*ml_parser.Attribute) []ml_parser.Node {
	nodes := make([]ml_parser.Node, len(attrs))
	for i, attr := range attrs {
		nodes[i] = attr
	}
	return nodes
}

func TestHtmlParser_Parse(t *testing.T) {
	parser := ml_parser.NewHtmlParser()

	t.Run("text nodes", func(t *testing.T) {
		t.Run("should parse root level text nodes", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Text", "a", 0},
			}
			result := humanizeDom(t, parser.Parse("a", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should parse text nodes inside elements", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "div", 0},
				[]interface{}{"Text", "a", 1},
			}
			result := humanizeDom(t, parser.Parse("<div>a</div>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should decode entities in text", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Text", "a < b & c d", 0},
			}
			result := humanizeDom(t, parser.Parse("a &lt; b &amp; c&nbsp;d", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should keep a lone < in text", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Text", "a < b", 0},
			}
			result := humanizeDom(t, parser.Parse("a < b", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("elements", func(t *testing.T) {
		t.Run("should parse nested elements", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "div", 0},
				[]interface{}{"Element", "span", 1},
				[]interface{}{"Text", "a", 2},
			}
			result := humanizeDom(t, parser.Parse("<div><span>a</span></div>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should parse attributes", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "div", 0},
				[]interface{}{"Attribute", "class", "a", 1},
				[]interface{}{"Attribute", "id", "b", 1},
				[]interface{}{"Attribute", "hidden", "", 1},
			}
			result := humanizeDom(t, parser.Parse(`<div class="a" id='b' hidden></div>`, "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should not expect closing tags for void elements", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "div", 0},
				[]interface{}{"Element", "input", 1},
				[]interface{}{"Text", "a", 1},
			}
			result := humanizeDom(t, parser.Parse("<div><input>a</div>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should allow self closing custom elements", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "my-cmp", 0},
				[]interface{}{"Text", "a", 0},
			}
			result := humanizeDom(t, parser.Parse("<my-cmp/>a", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should close unclosed elements at EOF", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "div", 0},
				[]interface{}{"Element", "span", 1},
			}
			result := humanizeDom(t, parser.Parse("<div><span>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("raw text elements", func(t *testing.T) {
		t.Run("should not parse style content as markup", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "style", 0},
				[]interface{}{"Text", "div > a { color: red }", 1},
			}
			result := humanizeDom(t, parser.Parse("<style>div > a { color: red }</style>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should not decode entities in script content", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "script", 0},
				[]interface{}{"Text", "a &lt; b", 1},
			}
			result := humanizeDom(t, parser.Parse("<script>a &lt; b</script>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run("should find the matching closing tag case insensitively", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Element", "style", 0},
				[]interface{}{"Text", ".a {}", 1},
			}
			result := humanizeDom(t, parser.Parse("<style>.a {}</STYLE>", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("comments", func(t *testing.T) {
		t.Run("should parse comments", func(t *testing.T) {
			expected := []interface{}{
				[]interface{}{"Comment", " hello ", 0},
			}
			result := humanizeDom(t, parser.Parse("<!-- hello -->", "TestComp"))
			if diff := cmp.Diff(expected, result); diff != "" {
				t.Errorf("humanizeDom() mismatch (-want +got):\n%s", diff)
			}
		})
	})

	t.Run("errors", func(t *testing.T) {
		t.Run("should report an unexpected closing tag", func(t *testing.T) {
			result := parser.Parse("<div></p></div>", "TestComp")
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
			}
			if got := result.Errors[0].Msg; got != `Unexpected closing tag "p". It may happen when the tag has already been closed by another tag.` {
				t.Errorf("unexpected message: %q", got)
			}
		})

		t.Run("should report a self closed non-void element", func(t *testing.T) {
			result := parser.Parse("<p/>", "TestComp")
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
			}
			if got := result.Errors[0].Msg; got != `Only void, custom and foreign elements can be self closed "p"` {
				t.Errorf("unexpected message: %q", got)
			}
		})

		t.Run("should report an end tag for a void element", func(t *testing.T) {
			result := parser.Parse("<input></input>", "TestComp")
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
			}
			if got := result.Errors[0].Msg; got != `Void elements do not have end tags "input"` {
				t.Errorf("unexpected message: %q", got)
			}
		})

		t.Run("should report EOF inside an open tag", func(t *testing.T) {
			result := parser.Parse("<div a=", "TestComp")
			if len(result.Errors) == 0 {
				t.Fatal("expected at least one error")
			}
			if got := result.Errors[0].Msg; got != `Unexpected character "EOF"` {
				t.Errorf("unexpected message: %q", got)
			}
		})
	})
}
