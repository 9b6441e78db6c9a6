/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package common

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"
)

func RandInt(max int64) int64 {
	bigNum, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		log.Printf("Failed to generate rand int\n")
	}

	return bigNum.Int64()
}

func ConvertNumberToHumanReadable(value int) string {
	const kilo = 1000
	const mega = 1000000
	const giga = 1000000000
	const tera = 1000000000000
	values := []float64{kilo, mega, giga, tera}
	prefixes := []string{"k", "M", "G", "T"}

	for index, limit := range values {
		if float64(value) < limit {
			index--
			if index < 0 {
				return fmt.Sprintf("%d", value)
			}

			return fmt.Sprintf("%.2f%s", float64(value)/values[index], prefixes[index])
		}
	}

	return fmt.Sprintf("%d", value)
}

func ParseDate(date string, defaultTime time.Time) (time.Time, error) {
	if date == "" {
		return defaultTime, nil
	}

	return time.Parse("2006-01-02", date)
}
