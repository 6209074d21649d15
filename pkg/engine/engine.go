// Package engine is the embeddable façade over the pi pipeline. Hosts that
// run the same scripts repeatedly get an LRU cache of compiled programs
// keyed by source hash; the cached AST is immutable and every run executes
// against a fresh environment, so one Engine serves any number of runs.
package engine

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agenthands/pilang/pkg/compiler/ast"
	"github.com/agenthands/pilang/pkg/compiler/lexer"
	"github.com/agenthands/pilang/pkg/compiler/parser"
	"github.com/agenthands/pilang/pkg/interp"
)

// DefaultCacheSize is a reasonable program cache capacity for hosts without
// a specific sizing need.
const DefaultCacheSize = 128

// Engine compiles and runs pi scripts.
type Engine struct {
	cache *lru.Cache[[sha256.Size]byte, *ast.Program]
}

// New returns an Engine with room for cacheSize compiled programs.
func New(cacheSize int) (*Engine, error) {
	cache, err := lru.New[[sha256.Size]byte, *ast.Program](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{cache: cache}, nil
}

// Compile lexes and parses src, reusing the cached program when the same
// source text was compiled before. Failed compilations are not cached.
func (e *Engine) Compile(src []byte) (*ast.Program, error) {
	key := sha256.Sum256(src)
	if prog, ok := e.cache.Get(key); ok {
		return prog, nil
	}

	p, err := parser.NewParser(lexer.NewScanner(src))
	if err != nil {
		return nil, err
	}
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	e.cache.Add(key, prog)
	return prog, nil
}

// Run compiles src and executes it against a fresh environment, returning
// the final variable state. Repeated runs of the same source are
// independent: the AST is shared, the environment never is.
func (e *Engine) Run(src []byte) (interp.Env, error) {
	prog, err := e.Compile(src)
	if err != nil {
		return nil, err
	}
	return interp.Run(prog)
}
