// Package services provides domain services that work across the request,
// worker and kernel models of the warehouse.
//
// The package includes:
//   - RouteOptimizer: orders a request's SKUs into a walk through the warehouse
//   - RequestDispatcher: pairs pending workers with pending requests, keeping
//     loading in request creation order
//
// Both services are pure. They never mutate the queues they inspect; callers
// remove matched entries by the returned index.
package services
