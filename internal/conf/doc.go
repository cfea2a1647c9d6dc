// Package conf reads, queries, mutates, and rewrites RabbitMQ's
// cuttlefish configuration format.
//
// The format is flat UTF-8 text, one declaration per line:
//
//	# comments start with a hash
//	listeners.tcp.default = 5672
//	cluster_name = 'my cluster'   # values with spaces are quoted
//
// A File holds two views of one parsed document: the ordered sequence of
// source lines (settings, comments, blanks) and an index from each key to
// the line currently holding its value. Every mutation updates both views
// in one step, so rendering reproduces untouched lines byte for byte
// while lookups stay constant-time.
//
// # Reading and writing
//
//	f, err := conf.Load("/etc/rabbitmq/rabbitmq.conf")
//	if err != nil {
//	    return err
//	}
//	port, ok := f.GetInt("listeners.tcp.default")
//	f.Set("log.console.level", "warning")
//	err = f.Save("/etc/rabbitmq/rabbitmq.conf")
//
// Load and Save go through the FileSystem interface; tests substitute an
// in-memory implementation.
//
// # Queries
//
// Dotted patterns with single-segment wildcards select groups of keys:
//
//	for _, s := range f.GetMatching("listeners.tcp.*") {
//	    fmt.Println(s.Key, s.Value)
//	}
//
// Key listings and match results are reported in alphabetical key order,
// independent of file order.
//
// # Behavior on edge cases
//
// Duplicate keys parse without error: reads see the last occurrence, but
// every physical line survives serialization. Remove blanks the setting's
// line instead of deleting it, keeping line positions stable. Parse,
// Load, and Save are the only fallible operations; queries and mutations
// are total.
package conf
