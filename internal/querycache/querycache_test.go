package querycache

import (
	"net/url"
	"testing"
)

func TestListKey_OrderIndependent(t *testing.T) {
	a := url.Values{}
	a.Set("pageNumber", "1")
	a.Set("dietType", "keto")
	b := url.Values{}
	b.Set("dietType", "keto")
	b.Set("pageNumber", "1")
	if ListKey("diets", a) != ListKey("diets", b) {
		t.Error("equal filters must produce equal keys")
	}
}

func TestGetAfterComplete(t *testing.T) {
	c := New()
	key := DetailKey("diets", 5)
	tok := c.Begin(key)
	if !c.Complete(key, tok, "detail-5") {
		t.Fatal("latest token should store")
	}
	v, ok := c.Get(key)
	if !ok || v != "detail-5" {
		t.Errorf("expected cached value, got %v, %v", v, ok)
	}
}

func TestStaleTokenDiscarded(t *testing.T) {
	c := New()
	key := ListKey("meals", url.Values{})

	slow := c.Begin(key)
	fast := c.Begin(key)

	if !c.Complete(key, fast, "newer") {
		t.Fatal("latest token should store")
	}
	// The slow earlier request resolves after the faster later one; its
	// response must not overwrite newer data.
	if c.Complete(key, slow, "older") {
		t.Error("superseded token must be discarded")
	}
	v, _ := c.Get(key)
	if v != "newer" {
		t.Errorf("expected newer value to survive, got %v", v)
	}
}

func TestInvalidateAfterMutation_DropsListBranch(t *testing.T) {
	c := New()
	f1 := url.Values{}
	f1.Set("pageNumber", "1")
	f2 := url.Values{}
	f2.Set("pageNumber", "2")
	c.Put(ListKey("diets", f1), "page1")
	c.Put(ListKey("diets", f2), "page2")
	c.Put(DetailKey("diets", 5), "detail")
	c.Put(ListKey("meals", url.Values{}), "meals")

	c.InvalidateAfterMutation("diets", 5)

	if _, ok := c.Get(ListKey("diets", f1)); ok {
		t.Error("list page 1 should be invalidated")
	}
	if _, ok := c.Get(ListKey("diets", f2)); ok {
		t.Error("list page 2 should be invalidated")
	}
	if _, ok := c.Get(DetailKey("diets", 5)); ok {
		t.Error("detail should be invalidated")
	}
	if _, ok := c.Get(ListKey("meals", url.Values{})); !ok {
		t.Error("other families must be untouched")
	}
}

func TestInvalidateAfterMutation_UnknownID(t *testing.T) {
	c := New()
	c.Put(DetailKey("diets", 7), "detail")
	c.InvalidateAfterMutation("diets", 0)
	if _, ok := c.Get(DetailKey("diets", 7)); !ok {
		t.Error("detail for an unknown id must survive a list-only invalidation")
	}
}

func TestInvalidateBranch_NoPrefixBleed(t *testing.T) {
	c := New()
	c.Put("diets"+sep+"list"+sep+"x", "a")
	c.Put("dietsarchive"+sep+"list"+sep+"x", "b")
	c.InvalidateBranch(ListBranch("diets"))
	if _, ok := c.Get("dietsarchive" + sep + "list" + sep + "x"); !ok {
		t.Error("similarly named family must not be invalidated")
	}
}
