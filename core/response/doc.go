// Package response builds handler.Response values for text, JSON and error replies.
//
//	func getWord(ctx *router.Context) handler.Response {
//		w, err := repo.GetWord(ctx, id)
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.JSON(w)
//	}
//
// Errors returned from a Response reach the router's error handler. JSONErrorHandler
// renders them as {"code": ..., "message": ..., "details": ...} using the status of an
// HTTPError, or of any error exposing StatusCode() int, and 500 otherwise.
package response
