// Package catalog reads a Lightroom catalog into typed entities.
//
// The catalog schema changed between Lightroom generations. Each entity has
// a Mapper holding one Strategy per supported Version: the tables and
// columns to select and the row decoder. Rows that fail to decode are
// dropped and kept as Diagnostic values; a load is only aborted by a query
// failure.
//
// Typical use:
//
//	cat := catalog.New("Lightroom Catalog.lrcat")
//	if err := cat.Open(ctx); err != nil {
//	    return err
//	}
//	defer cat.Close()
//
//	if err := cat.LoadVersion(ctx); err != nil {
//	    return err
//	}
//	if !cat.Version().IsSupported() {
//	    return catalog.ErrUnsupportedVersion
//	}
//	tree, err := cat.LoadKeywordTree(ctx)
//
// Loaders cache their result and return it on later calls. An entity set
// that is empty in the catalog is queried again on every call.
//
// Structured values stored as text (smart collections, filters, image
// properties) are decoded with package lron.
package catalog
