package pagination

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFromContext_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	p := FromContext(c)
	if p.PageNumber != DefaultPageNumber {
		t.Errorf("expected page %d, got %d", DefaultPageNumber, p.PageNumber)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("expected size %d, got %d", DefaultPageSize, p.PageSize)
	}
}

func TestFromContext_ClampsMax(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?pageNumber=3&pageSize=500", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	p := FromContext(c)
	if p.PageNumber != 3 {
		t.Errorf("expected page 3, got %d", p.PageNumber)
	}
	if p.PageSize != MaxPageSize {
		t.Errorf("expected size %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestOffset(t *testing.T) {
	p := Params{PageNumber: 3, PageSize: 10}
	if p.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", p.Offset())
	}
}

func TestHasNext(t *testing.T) {
	p := Params{PageNumber: 1, PageSize: 10}
	if !p.HasNext(11) {
		t.Error("expected next page for total 11")
	}
	if p.HasNext(10) {
		t.Error("did not expect next page for total 10")
	}
}

func TestEncode(t *testing.T) {
	q := url.Values{}
	Params{PageNumber: 2, PageSize: 25}.Encode(q)
	if q.Get("pageNumber") != "2" || q.Get("pageSize") != "25" {
		t.Errorf("unexpected query: %s", q.Encode())
	}
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}
	page := Slice(all, Params{PageNumber: 2, PageSize: 2})
	if len(page.Items) != 2 || page.Items[0] != 3 {
		t.Errorf("unexpected window: %v", page.Items)
	}
	if page.TotalCount != 5 {
		t.Errorf("expected total 5, got %d", page.TotalCount)
	}
}

func TestSlice_PastEnd(t *testing.T) {
	page := Slice([]int{1, 2}, Params{PageNumber: 9, PageSize: 10})
	if len(page.Items) != 0 {
		t.Errorf("expected empty window, got %v", page.Items)
	}
	if page.TotalCount != 2 {
		t.Errorf("expected total 2, got %d", page.TotalCount)
	}
}

func TestNewPage_NilItems(t *testing.T) {
	page := NewPage[int](nil, 0, Default())
	if page.Items == nil {
		t.Error("items should marshal as [], not null")
	}
}
