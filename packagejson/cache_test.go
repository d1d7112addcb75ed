/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package packagejson_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"bennypowers.dev/noderesolve/packagejson"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := packagejson.NewMemoryCache()
	if _, ok := c.Get("/a/package.json"); ok {
		t.Fatal("Get on empty cache found an entry")
	}
	pkg := &packagejson.PackageJson{Path: "/a/package.json", Name: "a"}
	c.Set("/a/package.json", pkg)
	got, ok := c.Get("/a/package.json")
	if !ok || got != pkg {
		t.Errorf("Get = %+v, %v, want %+v, true", got, ok, pkg)
	}
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := packagejson.NewMemoryCache()
	c.Set("/a/package.json", &packagejson.PackageJson{Path: "/a/package.json"})
	c.Invalidate("/a/package.json")
	if _, ok := c.Get("/a/package.json"); ok {
		t.Error("Get found entry after Invalidate")
	}
}

func TestMemoryCacheGetOrLoadCoalescesConcurrentLoads(t *testing.T) {
	c := packagejson.NewMemoryCache()
	var loads int32

	const n = 50
	var wg sync.WaitGroup
	results := make([]*packagejson.PackageJson, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			pkg, err := c.GetOrLoad("/a/package.json", func() (*packagejson.PackageJson, error) {
				atomic.AddInt32(&loads, 1)
				return &packagejson.PackageJson{Path: "/a/package.json", Name: "a"}, nil
			})
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
				return
			}
			results[i] = pkg
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Errorf("loader invoked %d times, want 1", got)
	}
	for i, pkg := range results {
		if pkg != results[0] {
			t.Errorf("results[%d] = %p, want identical reference %p", i, pkg, results[0])
		}
	}
}

func TestMemoryCacheGetOrLoadPropagatesError(t *testing.T) {
	c := packagejson.NewMemoryCache()
	wantErr := denyErr("boom")
	_, err := c.GetOrLoad("/bad/package.json", func() (*packagejson.PackageJson, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("/bad/package.json"); ok {
		t.Error("failed load should not populate the cache")
	}
}
