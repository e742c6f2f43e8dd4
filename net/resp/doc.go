// Package resp writes the uniform JSON response envelope.
//
// Success responses wrap their payload:
//
//	resp.Success(c.Writer, alert)
//	resp.List(c.Writer, page, meta) // adds the pagination block
//
// Failures go through an Exception built by one of the helpers:
//
//	resp.Fail(c.Writer, resp.BadRequest("comment required"))
//	resp.Fail(c.Writer, resp.BadGateway("alerts source unavailable"))
package resp
