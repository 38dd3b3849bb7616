// Package traverse is the recursive scanning engine. It walks a directory
// tree depth-first in lexical order, evaluates a predicate against every
// visited entry, and yields results one at a time through a pull-based
// Stream so memory use is bounded by tree depth, not tree size. Unreadable
// subtrees are counted and skipped without aborting the scan. This package
// is internal; external consumers should use the facade in pkg/core.
package traverse
