package parse

import (
	"github.com/signadot/toml-format/ast"
)

// associateComments rewrites the forward comment attachment produced
// while parsing an array into reading order. The grammar hands each
// inter-element comment run to the element that follows it; a reader
// instead sees a comment sharing a line with an element as trailing
// that element, and a comment on its own line as leading the next one.
//
// The pass walks elements last to first carrying a bucket of trailing
// comments. The bucket seeds from the run between the last element and
// the closing bracket, reclassified Post. Each element keeps its Pre
// comments plus the bucket, and its own Post comments become the
// bucket for the element before it. Whatever remains before the first
// element has nothing to trail, so it reclassifies Pre and leads the
// first element. Comment runs inside an empty array are dropped.
func associateComments(items []*ast.Item, trailing ast.Comments) {
	bucket := make(ast.Comments, 0, len(trailing))
	for _, c := range trailing {
		c.Kind = ast.Post
		bucket = append(bucket, c)
	}
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		var pre, own ast.Comments
		for _, c := range it.Comments {
			if c.Kind == ast.Post {
				own = append(own, c)
			} else {
				pre = append(pre, c)
			}
		}
		it.Comments = append(pre, bucket...)
		bucket = own
	}
	if len(items) > 0 && len(bucket) > 0 {
		for i := range bucket {
			bucket[i].Kind = ast.Pre
		}
		items[0].Comments = append(bucket, items[0].Comments...)
	}
}
