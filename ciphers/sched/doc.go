// Package sched runs long byte-processing work cooperatively on a
// single-threaded task queue.
//
// A Scheduler executes submitted tasks one at a time; a task parks itself by
// calling its yield function, which moves it to the back of the run queue
// and hands control to the next runnable task. Loop drives a bounded
// iteration over a body function and yields on a wall-clock budget, so
// encrypting or hashing a very large buffer never monopolizes the queue.
// Async adapts a synchronous cipher to the ciphers.AsyncCipher contract by
// running each operation as a scheduler task.
package sched
