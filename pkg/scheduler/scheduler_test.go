package scheduler_test

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/pkg/scheduler"
)

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			s = scheduler.NewScheduler(1)

			work := func(ctx context.Context) (any, error) {
				return "done", nil
			}

			future := s.AddWork(work)
			Expect(future).NotTo(BeNil())

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Data).To(Equal("done"))
		})
	})

	Describe("Run work", func() {
		It("should execute multiple work items", func() {
			s = scheduler.NewScheduler(2)

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				work := func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				}
				s.AddWork(work)
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})
	})

	Describe("Cancel work", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			future := s.AddWork(work)
			time.Sleep(100 * time.Millisecond)
			future.Stop()

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})

		It("should cancel work when scheduler is closed", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			s.AddWork(work)
			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler(4)

			work := func(ctx context.Context) (any, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}

			for i := 0; i < 200; i++ {
				s.AddWork(work)
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})

	Describe("Serial execution", func() {
		It("should run work in submission order without overlap on a single worker", func() {
			s = scheduler.NewScheduler(1)

			var (
				order   []int
				running int32
				overlap bool
			)
			futures := make([]*scheduler.Future[scheduler.Result[any]], 0, 20)
			for i := range 20 {
				idx := i
				futures = append(futures, s.AddWork(func(ctx context.Context) (any, error) {
					if atomic.AddInt32(&running, 1) > 1 {
						overlap = true
					}
					order = append(order, idx)
					time.Sleep(time.Millisecond)
					atomic.AddInt32(&running, -1)
					return idx, nil
				}))
			}
			for _, f := range futures {
				Eventually(f.C(), 2*time.Second).Should(Receive())
			}

			Expect(overlap).To(BeFalse())
			Expect(order).To(HaveLen(20))
			for i, v := range order {
				Expect(v).To(Equal(i))
			}
		})
	})

	Describe("Do", func() {
		It("should return the typed result of the work", func() {
			s = scheduler.NewScheduler(1)

			v, err := scheduler.Do(context.Background(), s, func(ctx context.Context) (int, error) {
				return 42, nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(42))
		})

		It("should return the work error", func() {
			s = scheduler.NewScheduler(1)

			_, err := scheduler.Do(context.Background(), s, func(ctx context.Context) (string, error) {
				return "", errors.New("boom")
			})

			Expect(err).To(MatchError("boom"))
		})

		It("should report a panic as an error", func() {
			s = scheduler.NewScheduler(1)

			_, err := scheduler.Do(context.Background(), s, func(ctx context.Context) (string, error) {
				panic("kaboom")
			})

			Expect(err).To(MatchError(ContainSubstring("worker panicked")))
		})

		It("should not start work canceled while queued", func() {
			s = scheduler.NewScheduler(1)

			// Given the only worker busy
			unblock := make(chan struct{})
			started := make(chan struct{})
			s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return nil, nil
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			// When the caller cancels before its work gets a worker
			ctx, cancel := context.WithCancel(context.Background())
			var ran atomic.Bool
			errs := make(chan error, 1)
			go func() {
				_, err := scheduler.Do(ctx, s, func(ctx context.Context) (int, error) {
					ran.Store(true)
					return 1, nil
				})
				errs <- err
			}()
			cancel()

			// Then Do returns the cancellation and the work never runs
			Eventually(errs, 1*time.Second).Should(Receive(MatchError(context.Canceled)))
			close(unblock)
			Consistently(ran.Load, 200*time.Millisecond).Should(BeFalse())
		})

		It("should wait for work that already started", func() {
			s = scheduler.NewScheduler(1)

			ctx, cancel := context.WithCancel(context.Background())
			started := make(chan struct{})
			unblock := make(chan struct{})
			type outcome struct {
				v   int
				err error
			}
			results := make(chan outcome, 1)
			go func() {
				v, err := scheduler.Do(ctx, s, func(ctx context.Context) (int, error) {
					close(started)
					<-unblock
					return 7, ctx.Err()
				})
				results <- outcome{v, err}
			}()
			Eventually(started, 1*time.Second).Should(BeClosed())

			// When the caller cancels mid-work
			cancel()
			Consistently(results, 100*time.Millisecond).ShouldNot(Receive())
			close(unblock)

			// Then the work context stays live and its result is returned
			var got outcome
			Eventually(results, 1*time.Second).Should(Receive(&got))
			Expect(got.err).NotTo(HaveOccurred())
			Expect(got.v).To(Equal(7))
		})
	})

	Describe("Close behavior", func() {
		It("should return canceled when AddWork is called after Close", func() {
			s = scheduler.NewScheduler(1)
			s.Close()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(context.Canceled))
		})

		It("should wait for in-flight work to finish on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			work := func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			}

			s.AddWork(work)
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			s = nil // prevent AfterEach from closing again
		})
	})
})
