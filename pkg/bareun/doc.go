// Package bareun is a client for the Bareun Korean morphological analysis and
// spelling correction service.
//
// The analysis itself runs on the server. This package resolves the endpoint,
// keeps a gRPC channel authenticated with the api-key header, and exposes the
// results through Tagged and Tokenized views:
//
//	tagger, err := bareun.NewTagger(ctx, apiKey, "localhost", 5656, "")
//	if err != nil {
//		return err
//	}
//	defer tagger.Close()
//	tagged, err := tagger.Tag(ctx, "오늘은 정말 추운 날이네요.", bareun.DefaultAnalyzeOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Println(tagged.Pos(true, true, false).Flat)
//
// Every failure is an *Error whose Kind can be tested with errors.Is against
// the Err* sentinels.
package bareun
