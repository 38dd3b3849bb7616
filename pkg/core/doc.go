// Package core provides a small, stable facade over Ferret's internal
// scanning engine for external integrations. It deliberately re-exports a
// narrow API surface so third-party tools can depend on a stable import path
// without reaching into internal packages.
//
// Example:
//
//	stream, err := core.Scan(ctx, core.Request{Root: "/etc", Pred: core.Suid()})
//	if err != nil { /* handle */ }
//	for it, ok := stream.Next(); ok; it, ok = stream.Next() {
//		if it.Outcome.Status == core.Matched {
//			fmt.Println(it.Entry.Path)
//		}
//	}
package core
