package repository_test

import (
	"fmt"
	"net/url"

	"github.com/matzehuels/mavenpub/pkg/repository"
)

func ExampleResolve() {
	release, _ := url.Parse("https://repo.example.com/releases/")
	snapshot, _ := url.Parse("https://repo.example.com/snapshots/")

	fmt.Println(repository.Resolve("1.0.0", release, snapshot))
	fmt.Println(repository.Resolve("1.0.0-SNAPSHOT", release, snapshot))
	// Output:
	// https://repo.example.com/releases/
	// https://repo.example.com/snapshots/
}
